package api

import "fmt"

// APIError — единственный вид ошибки клиента API. Различать причины
// можно только по тексту Message; Status носит справочный характер
// (0, если сервер не ответил).
type APIError struct {
	Message string
	Status  int
	cause   error
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error { return e.cause }

// networkMessage формирует подсказку для случая, когда сервер недоступен.
func networkMessage(baseURL string) string {
	return fmt.Sprintf("Network request failed: could not reach the API at %s. "+
		"Check that the backend is running and reachable from this device. "+
		"Android emulators reach the host machine at http://10.0.2.2:<port>, not localhost; "+
		"for a physical device or a simulator on another network set API_URL to the host's LAN address.",
		baseURL)
}
