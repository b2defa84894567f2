package portfolio

import (
	"deltadesk/internal/ledger"
	"deltadesk/internal/model"
	"deltadesk/pkg/errors"
	"deltadesk/pkg/errors/ecode"
	"deltadesk/pkg/response"
	"deltadesk/pkg/validator"
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

// SummaryGet 组合概览
func (h *Handler) SummaryGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		response.JSON(ctx, nil, h.ledger.Summary())
	}
}

// HedgeGet 对冲建议
func (h *Handler) HedgeGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		response.JSON(ctx, nil, h.ledger.HedgeRecommendation())
	}
}

// OptionsGetList 期权仓位列表，支持按方向过滤
func (h *Handler) OptionsGetList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.PositionListReq
		if err := ctx.ShouldBindQuery(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, validator.Translate(err)), nil)
			return
		}

		list := h.ledger.Options()
		if req.PositionType != "" {
			filtered := make([]model.OptionPosition, 0, len(list))
			for _, pos := range list {
				if pos.PositionType == req.PositionType {
					filtered = append(filtered, pos)
				}
			}
			list = filtered
		}
		response.JSON(ctx, nil, list)
	}
}

// OptionCreate 新增期权仓位。body里除必需字段外的键透传保存
func (h *Handler) OptionCreate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var data map[string]interface{}
		if err := ctx.ShouldBindJSON(&data); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}

		pos, err := h.ledger.AddOption(data)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, pos)
	}
}

// OptionRemove 按id删除期权仓位，id不存在也返回成功
func (h *Handler) OptionRemove() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.Param("id")
		if id == "" {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "id is required"), nil)
			return
		}
		h.ledger.RemoveOption(id)
		response.JSON(ctx, nil, gin.H{"id": id})
	}
}

// UnderlyingGetList 标的仓位列表
func (h *Handler) UnderlyingGetList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.PositionListReq
		if err := ctx.ShouldBindQuery(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, validator.Translate(err)), nil)
			return
		}

		list := h.ledger.Underlying()
		if req.PositionType != "" {
			filtered := make([]model.UnderlyingPosition, 0, len(list))
			for _, pos := range list {
				if pos.PositionType == req.PositionType {
					filtered = append(filtered, pos)
				}
			}
			list = filtered
		}
		response.JSON(ctx, nil, list)
	}
}

// UnderlyingCreate 新增标的仓位
func (h *Handler) UnderlyingCreate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var data map[string]interface{}
		if err := ctx.ShouldBindJSON(&data); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}

		pos, err := h.ledger.AddUnderlying(data)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, pos)
	}
}

// UnderlyingRemove 按id删除标的仓位
func (h *Handler) UnderlyingRemove() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.Param("id")
		if id == "" {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "id is required"), nil)
			return
		}
		h.ledger.RemoveUnderlying(id)
		response.JSON(ctx, nil, gin.H{"id": id})
	}
}
