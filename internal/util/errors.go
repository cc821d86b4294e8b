package util

import "errors"

var (
	ErrPermissionDenied      = errors.New("permission denied")
	ErrLevelSubjectNotFound  = errors.New("level subject not found")
	ErrObjectiveNotFound     = errors.New("learning objective not found")
	ErrObjectiveExists       = errors.New("a learning objective already exists for this module")
	ErrEvaluationLinkMissing = errors.New("evaluation link not found")
	ErrModuleLocked          = errors.New("module is locked")
	ErrEvaluationNotReleased = errors.New("evaluation not released yet")
	ErrInvalidScore          = errors.New("score must be between 0 and max score")
)
