package models

// AssistantRequest is the payload sent to the assistant endpoint.
type AssistantRequest struct {
	Message string `json:"message"`
}

// AssistantResponse is always returned by the assistant endpoint, even when
// the model could not be reached.
type AssistantResponse struct {
	Reply string `json:"reply"`
}
