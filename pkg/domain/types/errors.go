package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")

	// GitHub search API failures. The search client never retries, the
	// caller decides what to do with each class.
	ErrRateLimited    = goerr.New("rate limited by GitHub API")
	ErrExternalServer = goerr.New("external server error")
	ErrNetwork        = goerr.New("network error")

	// Feishu Bitable failures. ErrAuthFailed aborts the whole run, the
	// others are handled per column or per record.
	ErrAuthFailed  = goerr.New("authentication failed")
	ErrBitableAPI  = goerr.New("bitable API error")
	ErrSchemaSetup = goerr.New("schema setup failed")
)
