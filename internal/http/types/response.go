// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package types carries the standard json response envelope so every API
// answers in the same shape.
package types

import (
	"encoding/json"
	"net/http"
)

// Machine-readable error codes. Authorization failures carry a code so
// callers can distinguish "contact your admin" from "upgrade your plan";
// authentication failures stay undifferentiated on purpose.
const (
	CodeUnauthenticated    = "unauthenticated"
	CodeAccessDenied       = "access_denied"
	CodePermissionDenied   = "permission_denied"
	CodeFeatureNotEntitled = "feature_not_entitled"
	CodeBadRequest         = "bad_request"
	CodeNotFound           = "not_found"
	CodeConflict           = "conflict"
	CodeInternal           = "internal"
)

type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func WriteResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{Status: status, Data: data})
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{Status: status, Code: code, Message: message})
}
