package constants

const (
	HEADER_REQUEST_ID    = "X-Request-ID"
	HEADER_ETAG          = "ETag"
	HEADER_IF_NONE_MATCH = "If-None-Match"
)
