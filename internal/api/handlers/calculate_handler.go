package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/koolbreezeandthetrees/ScrapsApp/domain"
	"github.com/koolbreezeandthetrees/ScrapsApp/internal/api/presenters"
	"github.com/koolbreezeandthetrees/ScrapsApp/pkg/calculate"
)

type (
	CalculateHandler interface {
		GetCalculatedRecipes(c *fiber.Ctx) error
	}

	calculateHandler struct {
		calculateService calculate.CalculateService
	}
)

func NewCalculateHandler(calculateService calculate.CalculateService) CalculateHandler {
	return &calculateHandler{calculateService: calculateService}
}

func (h *calculateHandler) GetCalculatedRecipes(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCalculateRecipes, domain.ErrInvalidUserID)
	}

	var categoryID uint
	if raw := c.Query("category_id", ""); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCalculateRecipes, domain.ErrInvalidID)
		}
		categoryID = uint(parsed)
	}

	res, err := h.calculateService.GetAnnotatedRecipes(c.Context(), userID, categoryID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCalculateRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCalculateRecipes)
}
