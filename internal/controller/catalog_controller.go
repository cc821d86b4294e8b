package controller

import (
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/service"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	CatalogService *service.CatalogService
}

func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{CatalogService: catalogService}
}

// @Summary List programs
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param all query bool false "Include inactive programs"
// @Success 200 {object} util.Response{data=[]model.LevelSubject}
// @Router /api/level-subjects [get]
func (c *CatalogController) ListLevelSubjects(ctx *gin.Context) {
	list, err := c.CatalogService.ListLevelSubjects(ctx.Request.Context(), ctx.Query("all") != "true")
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// @Summary Create a program
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param levelSubject body service.LevelSubjectRequest true "Program"
// @Success 201 {object} util.Response{data=model.LevelSubject}
// @Router /api/admin/level-subjects [post]
func (c *CatalogController) CreateLevelSubject(ctx *gin.Context) {
	var req service.LevelSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ls, err := c.CatalogService.CreateLevelSubject(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, ls)
}

// @Summary Update a program
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID"
// @Param levelSubject body service.LevelSubjectRequest true "Program"
// @Success 200 {object} util.Response{data=model.LevelSubject}
// @Router /api/admin/level-subjects/{id} [put]
func (c *CatalogController) UpdateLevelSubject(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	var req service.LevelSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ls, err := c.CatalogService.UpdateLevelSubject(ctx.Request.Context(), id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, ls)
}

// @Summary Delete a program
// @Tags Admin
// @Security BearerAuth
// @Param id path int true "Program ID"
// @Success 200 {object} util.Response
// @Router /api/admin/level-subjects/{id} [delete]
func (c *CatalogController) DeleteLevelSubject(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.CatalogService.DeleteLevelSubject(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Learning objectives of a program, one per module
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID"
// @Success 200 {object} util.Response{data=[]model.LearningObjective}
// @Router /api/level-subjects/{id}/objectives [get]
func (c *CatalogController) ListObjectives(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}

	list, err := c.CatalogService.ListObjectives(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// @Summary Attach a learning objective to a module
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID"
// @Param objective body service.ObjectiveRequest true "Objective"
// @Success 201 {object} util.Response{data=model.LearningObjective}
// @Failure 409 {object} util.Response
// @Router /api/admin/level-subjects/{id}/objectives [post]
func (c *CatalogController) CreateObjective(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	var req service.ObjectiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	o, err := c.CatalogService.CreateObjective(ctx.Request.Context(), id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, o)
}

// @Summary Update a learning objective
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Objective ID"
// @Param objective body service.ObjectiveRequest true "Objective"
// @Success 200 {object} util.Response{data=model.LearningObjective}
// @Router /api/admin/objectives/{id} [put]
func (c *CatalogController) UpdateObjective(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	var req service.ObjectiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	o, err := c.CatalogService.UpdateObjective(ctx.Request.Context(), id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, o)
}

// @Summary Delete a learning objective
// @Tags Admin
// @Security BearerAuth
// @Param id path int true "Objective ID"
// @Success 200 {object} util.Response
// @Router /api/admin/objectives/{id} [delete]
func (c *CatalogController) DeleteObjective(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.CatalogService.DeleteObjective(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
