package controller

import (
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/service"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type EvaluationController struct {
	EvaluationService *service.EvaluationService
}

func NewEvaluationController(evaluationService *service.EvaluationService) *EvaluationController {
	return &EvaluationController{EvaluationService: evaluationService}
}

// @Summary Record an evaluation attempt
// @Description Passing evaluation 2 completes the module and unlocks the next one.
// @Tags Evaluations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param result body service.RecordResultRequest true "Attempt"
// @Success 201 {object} util.Response{data=model.EvaluationResult}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/evaluations/results [post]
func (c *EvaluationController) RecordResult(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.RecordResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.EvaluationService.RecordResult(ctx.Request.Context(), user.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// @Summary List evaluation attempts
// @Tags Evaluations
// @Produce json
// @Security BearerAuth
// @Param levelSubjectId query int true "Program ID"
// @Param userId query int false "Student ID (staff only)"
// @Success 200 {object} util.Response{data=[]model.EvaluationResult}
// @Router /api/evaluations/results [get]
func (c *EvaluationController) ListResults(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	levelSubjectID, ok := levelSubjectQuery(ctx)
	if !ok {
		return
	}
	userID, err := targetUser(ctx, user)
	if err != nil {
		respondError(ctx, err)
		return
	}

	results, err := c.EvaluationService.ListResults(ctx.Request.Context(), userID, levelSubjectID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// @Summary Completed modules
// @Tags Evaluations
// @Produce json
// @Security BearerAuth
// @Param levelSubjectId query int true "Program ID"
// @Param userId query int false "Student ID (staff only)"
// @Success 200 {object} util.Response
// @Router /api/evaluations/completed [get]
func (c *EvaluationController) CompletedModules(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	levelSubjectID, ok := levelSubjectQuery(ctx)
	if !ok {
		return
	}
	userID, err := targetUser(ctx, user)
	if err != nil {
		respondError(ctx, err)
		return
	}

	modules, err := c.EvaluationService.CompletedModules(ctx.Request.Context(), userID, levelSubjectID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"userId": userID, "levelSubjectId": levelSubjectID, "completedModules": modules})
}
