package config

import (
	"log/slog"

	"github.com/secmon-lab/trendhub/pkg/domain/types"
	"github.com/secmon-lab/trendhub/pkg/infra/bitable"
	"github.com/urfave/cli/v3"
)

type Feishu struct {
	appID     types.FeishuAppID
	appSecret types.FeishuAppSecret `masq:"secret"`
	baseID    types.BitableBaseID
	tableID   types.BitableTableID
}

func (x *Feishu) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "feishu-app-id",
			Usage:       "Feishu app ID",
			Category:    "Feishu",
			Destination: (*string)(&x.appID),
			Sources:     cli.EnvVars("TRENDHUB_FEISHU_APP_ID"),
		},
		&cli.StringFlag{
			Name:        "feishu-app-secret",
			Usage:       "Feishu app secret",
			Category:    "Feishu",
			Destination: (*string)(&x.appSecret),
			Sources:     cli.EnvVars("TRENDHUB_FEISHU_APP_SECRET"),
		},
		&cli.StringFlag{
			Name:        "bitable-base-id",
			Usage:       "Bitable base ID (app token). A new base is created when empty",
			Category:    "Feishu",
			Destination: (*string)(&x.baseID),
			Sources:     cli.EnvVars("TRENDHUB_BITABLE_BASE_ID"),
		},
		&cli.StringFlag{
			Name:        "bitable-table-id",
			Usage:       "Bitable table ID. A new table is created when empty",
			Category:    "Feishu",
			Destination: (*string)(&x.tableID),
			Sources:     cli.EnvVars("TRENDHUB_BITABLE_TABLE_ID"),
		},
	}
}

func (x *Feishu) Enabled() bool {
	return x.appID != "" && x.appSecret != ""
}

func (x Feishu) New() (*bitable.Client, error) {
	return bitable.New(x.appID, x.appSecret)
}

func (x Feishu) BaseID() types.BitableBaseID {
	return x.baseID
}

func (x Feishu) TableID() types.BitableTableID {
	return x.tableID
}

func (x Feishu) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("AppID", x.appID),
		slog.Int("AppSecret.len", len(x.appSecret)),
		slog.Any("BaseID", x.baseID),
		slog.Any("TableID", x.tableID),
	)
}
