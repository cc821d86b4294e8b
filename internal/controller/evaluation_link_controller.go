package controller

import (
	"strconv"

	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/service"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type EvaluationLinkController struct {
	LinkService *service.EvaluationLinkService
}

func NewEvaluationLinkController(linkService *service.EvaluationLinkService) *EvaluationLinkController {
	return &EvaluationLinkController{LinkService: linkService}
}

// @Summary List evaluation links with release dates
// @Tags Evaluation Links
// @Produce json
// @Security BearerAuth
// @Param levelSubjectId query int true "Program ID"
// @Param moduleNumber query int false "Module number"
// @Success 200 {object} util.Response{data=[]service.EvaluationLinkView}
// @Router /api/evaluation-links [get]
func (c *EvaluationLinkController) List(ctx *gin.Context) {
	levelSubjectID, ok := levelSubjectQuery(ctx)
	if !ok {
		return
	}
	moduleNumber := 0
	if raw := ctx.Query("moduleNumber"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			util.BadRequest(ctx, "invalid moduleNumber")
			return
		}
		moduleNumber = n
	}

	links, err := c.LinkService.List(ctx.Request.Context(), levelSubjectID, moduleNumber)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, links)
}

// @Summary Get an evaluation link
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Link ID"
// @Success 200 {object} util.Response{data=service.EvaluationLinkView}
// @Router /api/admin/evaluation-links/{id} [get]
func (c *EvaluationLinkController) Get(ctx *gin.Context) {
	link, err := c.LinkService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, link)
}

// @Summary Create an evaluation link
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param link body service.EvaluationLinkRequest true "Link"
// @Success 201 {object} util.Response{data=service.EvaluationLinkView}
// @Router /api/admin/evaluation-links [post]
func (c *EvaluationLinkController) Create(ctx *gin.Context) {
	var req service.EvaluationLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	link, err := c.LinkService.Create(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, link)
}

// @Summary Update an evaluation link
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Link ID"
// @Param link body service.EvaluationLinkRequest true "Link"
// @Success 200 {object} util.Response{data=service.EvaluationLinkView}
// @Router /api/admin/evaluation-links/{id} [put]
func (c *EvaluationLinkController) Update(ctx *gin.Context) {
	var req service.EvaluationLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	link, err := c.LinkService.Update(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, link)
}

// @Summary Delete an evaluation link
// @Tags Admin
// @Security BearerAuth
// @Param id path string true "Link ID"
// @Success 200 {object} util.Response
// @Router /api/admin/evaluation-links/{id} [delete]
func (c *EvaluationLinkController) Delete(ctx *gin.Context) {
	if err := c.LinkService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
