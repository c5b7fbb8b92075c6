package entity

import "errors"

// AnalysisFailedMessage is what the user sees when ErrAnalysisFailed is returned.
const AnalysisFailedMessage = "Failed to analyze chat message. Please try again."

// Standard domain errors
var (
	ErrInternalServer   = errors.New("an internal error occurred")
	ErrInvalidRequest   = errors.New("invalid request parameters")
	ErrResourceNotFound = errors.New("the requested resource was not found")
	ErrUnauthenticated  = errors.New("sign in required")

	// ErrAnalysisFailed is the only failure the analysis pipeline reports.
	ErrAnalysisFailed = errors.New("analysis could not complete")

	ErrEmptyText         = errors.New("please enter a chat message to analyze")
	ErrTextTooLong       = errors.New("chat message exceeds the length allowed by your plan")
	ErrNoEnginesSelected = errors.New("please select at least one AI engine for analysis")
	ErrUnknownEngine     = errors.New("unknown AI engine")
	ErrPremiumEngine     = errors.New("engine is available with Premium subscription")
	ErrEngineLimit       = errors.New("engine limit reached for your plan")
	ErrDailyLimitReached = errors.New("daily limit reached: upgrade to Premium for unlimited queries")
	ErrPremiumFeature    = errors.New("feature is available with Premium subscription")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrAlreadyPremium    = errors.New("subscription is already premium")
)
