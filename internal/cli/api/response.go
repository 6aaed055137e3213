package api

import "encoding/json"

// Response — разобранный успешный ответ сервера. Отказ приходит как *APIError.
type Response interface {
	// Payload возвращает тело ответа без изменений.
	Payload() json.RawMessage
}

// AuthSuccess — ответ register/login с установленной сессией.
type AuthSuccess struct {
	Token string
	User  json.RawMessage
	Raw   json.RawMessage
}

func (r AuthSuccess) Payload() json.RawMessage { return r.Raw }

// GenericPayload — любой другой JSON-ответ, включая register/login без токена.
type GenericPayload struct {
	Raw json.RawMessage
}

func (r GenericPayload) Payload() json.RawMessage { return r.Raw }

// Decode определяет вариант ответа. Токен признаётся только непустой строкой.
func Decode(raw json.RawMessage) Response {
	var probe struct {
		Token any             `json:"token"`
		User  json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return GenericPayload{Raw: raw}
	}
	token, _ := probe.Token.(string)
	if token == "" {
		return GenericPayload{Raw: raw}
	}
	return AuthSuccess{Token: token, User: probe.User, Raw: raw}
}
