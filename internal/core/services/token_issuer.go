package services

import (
	"strconv"
	"time"

	portssvc "github.com/myaccountdemo/account_api/internal/core/ports/services"
	"github.com/myaccountdemo/account_api/internal/platform/config"
	"github.com/myaccountdemo/account_api/internal/utils"
)

// JWTIssuer signs bearer tokens with the configured HS256 secret.
type JWTIssuer struct {
	cfg *config.Config
}

func NewJWTIssuer(cfg *config.Config) *JWTIssuer {
	return &JWTIssuer{cfg: cfg}
}

var _ portssvc.TokenIssuer = (*JWTIssuer)(nil)

func (i *JWTIssuer) Issue(userID int64, username string) (string, time.Time, error) {
	return utils.GenerateJWT(
		strconv.FormatInt(userID, 10),
		username,
		i.cfg.JWTSecret,
		i.cfg.JWTIssuer,
		i.cfg.JWTAudience,
		i.cfg.JWTExpiryDuration,
	)
}
