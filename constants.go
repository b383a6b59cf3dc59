package main

// Session configuration constants
const (
	SessionCookieName = "session_id"
)

// Route constants
const (
	RouteState           = "/state"
	RouteWords           = "/words"
	RouteWordsUpload     = "/words/upload"
	RouteCriteria        = "/criteria"
	RouteCriterion       = "/criteria/:index"
	RouteCriteriaClear   = "/criteria/clear"
	RouteSearch          = "/search"
	RouteHealthz         = "/healthz"
	uploadFormField      = "file"
	csvContentType       = "text/csv"
	csvExtension         = ".csv"
	defaultMaxUploadSize = 5 << 20
	uploadFormOverhead   = 64 << 10 // multipart boundaries and part headers
)

// Message constants
const (
	MsgUploadMissing   = "Please choose a file to upload."
	MsgUploadType      = "Please upload a .csv file."
	MsgUploadRead      = "Failed to read file."
	MsgUploadTooLarge  = "File is too large."
	MsgUploadLoaded    = "Successfully loaded %q!"
	MsgCriteriaCleared = "All search criteria cleared."
	MsgBadIndex        = "Criterion index must be a number."
	MsgTooManyRequests = "Too many requests. Please slow down."
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)
