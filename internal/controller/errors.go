package controller

import (
	"errors"
	"strconv"

	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/calendar"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/model"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

var errInvalidOverride = errors.New("invalid calendar override")

// respondError maps domain errors to HTTP statuses. Unknown errors are
// logged and reported as 500.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, calendar.ErrModuleOutOfRange),
		errors.Is(err, calendar.ErrEvaluationOutOfRange),
		errors.Is(err, calendar.ErrMissingStartDate),
		errors.Is(err, calendar.ErrInvalidModuleDuration),
		errors.Is(err, calendar.ErrInvalidTotalModules),
		errors.Is(err, util.ErrInvalidScore),
		errors.Is(err, errInvalidOverride):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrModuleLocked),
		errors.Is(err, util.ErrEvaluationNotReleased),
		errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx, err.Error())
	case errors.Is(err, util.ErrLevelSubjectNotFound),
		errors.Is(err, util.ErrObjectiveNotFound),
		errors.Is(err, util.ErrEvaluationLinkMissing):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrObjectiveExists):
		util.Conflict(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// levelSubjectQuery reads the required levelSubjectId query parameter.
func levelSubjectQuery(ctx *gin.Context) (uint, bool) {
	id := util.MustParseUint(ctx.Query("levelSubjectId"))
	if id == 0 {
		util.BadRequest(ctx, "levelSubjectId is required")
		return 0, false
	}
	return id, true
}

func uintParam(ctx *gin.Context, name string) (uint, bool) {
	id := util.MustParseUint(ctx.Param(name))
	if id == 0 {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return id, true
}

func intParam(ctx *gin.Context, name string) (int, bool) {
	n, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return n, true
}

func isStaff(user *util.Claims) bool {
	return user.Role == model.Teacher || user.Role == model.Admin
}

// targetUser resolves whose data is requested. Staff may name any user with
// ?userId=; students only ever see their own.
func targetUser(ctx *gin.Context, user *util.Claims) (uint, error) {
	raw := ctx.Query("userId")
	if raw == "" {
		return user.UserID, nil
	}
	id := util.MustParseUint(raw)
	if id == user.UserID {
		return id, nil
	}
	if !isStaff(user) || id == 0 {
		return 0, util.ErrPermissionDenied
	}
	return id, nil
}
