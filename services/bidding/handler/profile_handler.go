package handler

import (
	"net/http"

	bidding "marketplace-bidding/internal/biddingService"
	model "marketplace-bidding/internal/models"
	"marketplace-bidding/services/bidding/helpers"
	"marketplace-bidding/utils"

	"github.com/gin-gonic/gin"
)

// SaveProfileHandler handles PUT /profile
func (h *BiddingHandler) SaveProfileHandler(c *gin.Context) {
	var req helpers.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SaveProfileHandler", err)
		return
	}

	sess := currentSession(c)
	profile, err := h.service.SaveProfile(c.Request.Context(), sess, bidding.ProfileInput{
		Username:     req.Username,
		PhoneNumber:  req.PhoneNumber,
		Role:         model.Role(req.Role),
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		helpers.HandleServiceError(c, "SaveProfileHandler", err, map[string]any{"user_id": sess.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, profile, "profile saved successfully")
	helpers.LogSuccess("SaveProfileHandler", "profile saved successfully", map[string]any{
		"user_id": sess.UserID,
		"role":    profile.Role,
	})
}

// GetProfileHandler handles GET /profiles/:uid
func (h *BiddingHandler) GetProfileHandler(c *gin.Context) {
	uid := c.Param("uid")
	profile, err := h.service.GetProfile(c.Request.Context(), uid)
	if err != nil {
		helpers.HandleServiceError(c, "GetProfileHandler", err, map[string]any{"uid": uid})
		return
	}
	utils.JSONResponse(c, http.StatusOK, profile, "profile retrieved successfully")
}

// ListCategoriesHandler handles GET /categories
func (h *BiddingHandler) ListCategoriesHandler(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "ListCategoriesHandler", err, nil)
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}
	utils.JSONResponse(c, http.StatusOK, categories, "categories retrieved successfully")
}

// CreateCategoryHandler handles POST /categories
func (h *BiddingHandler) CreateCategoryHandler(c *gin.Context) {
	var req helpers.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateCategoryHandler", err)
		return
	}

	sess := currentSession(c)
	category, err := h.service.CreateCategory(c.Request.Context(), sess, req.Name)
	if err != nil {
		helpers.HandleServiceError(c, "CreateCategoryHandler", err, map[string]any{"name": req.Name})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, category, "category created successfully")
	helpers.LogSuccess("CreateCategoryHandler", "category created successfully", map[string]any{
		"category_id": category.ID,
		"name":        category.Name,
	})
}
