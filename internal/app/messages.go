// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// video vault HTTP handlers.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. Keeping them in one place keeps the wording consistent
// between the API and the browser pages that display it.
package app

const (
	// MsgVideosUploaded confirms that every file of an upload was stored.
	MsgVideosUploaded = "videos uploaded successfully"

	// MsgVideoUploadFailed heads the response of an upload whose transfer to
	// the media host failed; the cause is reported next to it.
	MsgVideoUploadFailed = "video upload failed"

	// MsgVideoDeleted confirms that a video left both the media host and the
	// metadata store.
	MsgVideoDeleted = "video deleted successfully"

	// MsgMediaHostOK is the answer of the media host health check.
	MsgMediaHostOK = "media host connection OK"

	// MsgDemoUserCreated and MsgDemoUserExists answer the demo account
	// bootstrap.
	MsgDemoUserCreated = "demo user created"
	MsgDemoUserExists  = "demo user already exists"

	// MsgAPIRunning is the answer of the API smoke endpoint.
	MsgAPIRunning = "API is running"

	// MsgNotFound answers routes that do not exist or do not accept the
	// request method.
	MsgNotFound = "not found"

	// StatusOK is the status reported by health checks that passed.
	StatusOK = "ok"
)
