package weather

// genericUpstreamMessage is the fallback when the provider's error body
// carries no usable message.
const genericUpstreamMessage = "Erro ao consultar API"

// UpstreamError reports any failure reaching or parsing the weather provider.
// Message is taken from the upstream error body when present.
type UpstreamError struct {
	Message string `json:"message"`
}

func (e *UpstreamError) Error() string {
	return e.Message
}
