package handler

import (
	"github.com/gin-gonic/gin"

	appreview "github.com/xiebiao/bookreview/internal/application/review"
	"github.com/xiebiao/bookreview/internal/interface/http/dto"
	"github.com/xiebiao/bookreview/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
	"github.com/xiebiao/bookreview/pkg/response"
)

// ReviewHandler 书评HTTP处理器
// 三个写操作都要求登录,调用者ID一律取自JWT而非请求体
type ReviewHandler struct {
	submitUseCase *appreview.SubmitReviewUseCase
	editUseCase   *appreview.EditReviewUseCase
	removeUseCase *appreview.RemoveReviewUseCase
}

// NewReviewHandler 创建书评处理器
func NewReviewHandler(
	submitUseCase *appreview.SubmitReviewUseCase,
	editUseCase *appreview.EditReviewUseCase,
	removeUseCase *appreview.RemoveReviewUseCase,
) *ReviewHandler {
	return &ReviewHandler{
		submitUseCase: submitUseCase,
		editUseCase:   editUseCase,
		removeUseCase: removeUseCase,
	}
}

// SubmitReview 提交书评
// @Summary      提交书评
// @Description  对指定图书发表书评,每人每书限一条,成功后同步更新平均评分
// @Tags         书评
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        bookId path int true "图书ID"
// @Param        request body dto.SubmitReviewRequest true "书评内容"
// @Success      201 {object} response.Response{data=appreview.ReviewResponse} "提交成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      409 {object} response.Response "已评论过该书"
// @Router       /books/{bookId}/reviews [post]
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	bookID, err := parseUintParam(c, "bookId")
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "图书ID非法")
		return
	}

	var req dto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.submitUseCase.Execute(c.Request.Context(), appreview.SubmitReviewRequest{
		BookID:  bookID,
		UserID:  middleware.MustGetUserID(c),
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// EditReview 修改书评
// @Summary      修改书评
// @Description  修改本人的书评,成功后同步更新平均评分
// @Tags         书评
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        bookId path int true "图书ID"
// @Param        reviewId path int true "书评ID"
// @Param        request body dto.EditReviewRequest true "新的书评内容"
// @Success      200 {object} response.Response{data=appreview.ReviewResponse} "修改成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "不是书评作者"
// @Failure      404 {object} response.Response "书评不存在"
// @Router       /books/{bookId}/reviews/{reviewId} [put]
func (h *ReviewHandler) EditReview(c *gin.Context) {
	bookID, err := parseUintParam(c, "bookId")
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "图书ID非法")
		return
	}
	reviewID, err := parseUintParam(c, "reviewId")
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "书评ID非法")
		return
	}

	var req dto.EditReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.editUseCase.Execute(c.Request.Context(), appreview.EditReviewRequest{
		BookID:   bookID,
		ReviewID: reviewID,
		UserID:   middleware.MustGetUserID(c),
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// RemoveReview 删除书评
// @Summary      删除书评
// @Description  删除本人的书评,成功后同步更新平均评分
// @Tags         书评
// @Produce      json
// @Security     BearerAuth
// @Param        bookId path int true "图书ID"
// @Param        reviewId path int true "书评ID"
// @Success      200 {object} response.Response "删除成功"
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "不是书评作者"
// @Failure      404 {object} response.Response "书评不存在"
// @Router       /books/{bookId}/reviews/{reviewId} [delete]
func (h *ReviewHandler) RemoveReview(c *gin.Context) {
	bookID, err := parseUintParam(c, "bookId")
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "图书ID非法")
		return
	}
	reviewID, err := parseUintParam(c, "reviewId")
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "书评ID非法")
		return
	}

	err = h.removeUseCase.Execute(c.Request.Context(), appreview.RemoveReviewRequest{
		BookID:   bookID,
		ReviewID: reviewID,
		UserID:   middleware.MustGetUserID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
