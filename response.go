package infoagent

type ResponseType string

const (
	ResponseTypeStatus ResponseType = "status"
	ResponseTypeFinal  ResponseType = "final"
	ResponseTypeError  ResponseType = "error"
	ResponseTypeEnd    ResponseType = "end"
)

// Response represents a communication unit from the Agent to the caller/UI.
type Response struct {
	Content string
	Type    ResponseType
}
