package catalog

// # Error Codes Reference
//
// This file defines user-friendly error messages with codes for support reference.
// When users encounter errors, they can quote the error code to support staff
// for faster diagnosis.
//
// # Product API Errors (API001-API099)
//
//	API001 - Load failed: Products could not be loaded
//	         Action: Please reload the page to try again
//	         Patterns: "fetch products failed"
//
//	API002 - Update failed: The product could not be updated
//	         Action: Your changes were not saved. Please try again
//	         Patterns: "update product failed"
//
//	API003 - Create failed: The product could not be created
//	         Action: Please check the values and try again
//	         Patterns: "create product failed"
//
//	API004 - Busy: Another change is still being saved
//	         Action: Wait for the previous change to finish and try again
//	         Patterns: "another change is still being saved"
//
// # Validation Errors (VAL001-VAL099)
//
//	VAL002 - Invalid price: Price must be a positive number
//	         Patterns: "price must be"
//
//	VAL001 - Required field: Please fill in all fields
//	         Patterns: "validation failed"
//
//	VAL003 - Invalid page size: Page size is not one of the offered choices
//	         Patterns: "invalid page size"
//
//	VAL004 - Invalid sort: Column cannot be sorted
//	         Patterns: "invalid sort field"
//
// # View Errors (VIEW001-VIEW099)
//
//	VIEW001 - Product not found: The product is no longer in the list
//	          Patterns: "product not found"
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Request cancelled
//	         Patterns: "context canceled"
//
//	REQ002 - Request timeout
//	         Patterns: "context deadline exceeded", "timeout"
//
// # Rate Limiting (RATE001)
//
//	RATE001 - Too many requests
//	          Patterns: "rate limit"
//
// # Default Error (ERR000)
//
//	ERR000 - An unexpected error occurred

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error patterns (case-insensitive) to user messages.
// The first matching pattern wins, so more specific patterns come first:
// a failed update caused by a timeout reports API002, not REQ002.
var errorPatterns = []errorPattern{
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
	{
		pattern: "another change is still being saved",
		msg: UserMessage{
			Message: "Another change is still being saved",
			Action:  "Wait for the previous change to finish and try again",
			Code:    "API004",
		},
	},
	{
		pattern: "update product failed",
		msg: UserMessage{
			Message: "Failed to update product",
			Action:  "Your changes were not saved. Please try again",
			Code:    "API002",
		},
	},
	{
		pattern: "create product failed",
		msg: UserMessage{
			Message: "Failed to create product",
			Action:  "Please check the values and try again",
			Code:    "API003",
		},
	},
	{
		pattern: "fetch products failed",
		msg: UserMessage{
			Message: "Error loading products",
			Action:  "Please reload the page to try again",
			Code:    "API001",
		},
	},
	{
		pattern: "price must be",
		msg: UserMessage{
			Message: "Price must be a positive number",
			Action:  "Enter a price greater than zero",
			Code:    "VAL002",
		},
	},
	{
		pattern: "validation failed",
		msg: UserMessage{
			Message: "Please fill in all fields",
			Action:  "Complete the highlighted fields and submit again",
			Code:    "VAL001",
		},
	},
	{
		pattern: "invalid page size",
		msg: UserMessage{
			Message: "Page size is not one of the offered choices",
			Action:  "Pick a page size from the list",
			Code:    "VAL003",
		},
	},
	{
		pattern: "invalid sort field",
		msg: UserMessage{
			Message: "This column cannot be sorted",
			Action:  "Sort by title, price, or category",
			Code:    "VAL004",
		},
	},
	{
		pattern: "product not found",
		msg: UserMessage{
			Message: "The product is no longer in the list",
			Action:  "Reload the products and select it again",
			Code:    "VIEW001",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ001",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Check your connection and try again",
			Code:    "REQ002",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Check your connection and try again",
			Code:    "REQ002",
		},
	},
}

// defaultMessage is returned when no pattern matches.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It searches through known error patterns (case-insensitive) and returns
// the first match. If no pattern matches, a generic fallback message with
// code ERR000 is returned.
//
// Example:
//
//	err := fmt.Errorf("%w: status 500", ErrUpdateFailed)
//	msg := MapError(err)
//	// msg.Code == "API002"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known pattern rather than
// the generic ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
