package settings

import (
	"deltadesk/internal/ledger"
	"deltadesk/pkg/errors"
	"deltadesk/pkg/errors/ecode"
	"deltadesk/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	ledger *ledger.Ledger
}

func NewHandler(l *ledger.Ledger) *Handler {
	return &Handler{
		ledger: l,
	}
}

// SettingsGet 当前设置
func (h *Handler) SettingsGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		response.JSON(ctx, nil, h.ledger.Settings())
	}
}

// SettingsUpdate 部分更新。只接收识别的键，未知键忽略
func (h *Handler) SettingsUpdate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var updates map[string]interface{}
		if err := ctx.ShouldBindJSON(&updates); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}

		current, err := h.ledger.UpdateSettings(updates)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, current)
	}
}
