package service

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	CodeAmbiguousTarget         ErrorCode = "AmbiguousTarget"
	CodeNoTarget                ErrorCode = "NoTarget"
	CodeInvalidPersonName       ErrorCode = "InvalidPersonName"
	CodeVerificationRequired    ErrorCode = "VerificationRequired"
	CodeTargetNotFound          ErrorCode = "TargetNotFound"
	CodeAmbiguousDirectoryMatch ErrorCode = "AmbiguousDirectoryMatch"
	CodeSizeFrameConflict       ErrorCode = "SizeFrameConflict"
	CodeInvalidRenderSize       ErrorCode = "InvalidRenderSize"
	CodeInternalFailure         ErrorCode = "InternalFailure"
)

// Error is the failure type of resolution and rendering. errors.Is compares codes,
// so the Err* values below work as sentinels.
type Error struct {
	Code ErrorCode
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Internal reports whether the error must be hidden from clients.
func (e *Error) Internal() bool {
	return e.Code == CodeInternalFailure
}

// HTTPStatus 业务错误对应的HTTP状态码
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeInternalFailure:
		return http.StatusInternalServerError
	case CodeTargetNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

var (
	ErrAmbiguousTarget         = &Error{Code: CodeAmbiguousTarget, Msg: "only one of name, organisation_id and function_tag may be given"}
	ErrNoTarget                = &Error{Code: CodeNoTarget, Msg: "one of name, organisation_id or function_tag is required"}
	ErrInvalidPersonName       = &Error{Code: CodeInvalidPersonName, Msg: "name must contain a first name and a last name"}
	ErrVerificationRequired    = &Error{Code: CodeVerificationRequired, Msg: "this organisation identifier can only be used with verification"}
	ErrTargetNotFound          = &Error{Code: CodeTargetNotFound, Msg: "no directory entry matches this target"}
	ErrAmbiguousDirectoryMatch = &Error{Code: CodeAmbiguousDirectoryMatch, Msg: "the directory returned several organisations for this identifier"}
	ErrSizeFrameConflict       = &Error{Code: CodeSizeFrameConflict, Msg: "size cannot be combined with the frame; pass frame=false"}
	ErrInvalidRenderSize       = &Error{Code: CodeInvalidRenderSize, Msg: "size is not a valid pixel size"}
	ErrInternal                = &Error{Code: CodeInternalFailure, Msg: "internal error"}
)

func newError(code ErrorCode, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

func internalError(msg string, err error) *Error {
	return &Error{Code: CodeInternalFailure, Msg: msg, Err: err}
}
