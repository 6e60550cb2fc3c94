// Package rest es el cliente HTTP de la consola hacia el API de la plataforma.
// Implementa los puertos reconcile.Gateway y notifier.Feed decodificando el
// envelope estándar { success, data, message } de todas las respuestas.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tu-usuario/hostal-pro/internal/application/reconcile"
)

// Client cliente HTTP autenticado contra el API de la plataforma.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient construye el cliente. token es el JWT de la sesión; httpClient nil
// usa uno con timeout de 15s.
func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    httpClient,
	}
}

// SetToken reemplaza el JWT (tras login o refresh).
func (c *Client) SetToken(token string) { c.token = token }

// envelope espejo del dto.Envelope del servidor con data cruda para decodificar después.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
}

// do ejecuta la petición y decodifica el envelope. out puede ser nil cuando no
// interesa el payload. Cualquier fallo (red, status no-2xx, success:false) se
// devuelve como *reconcile.RequestError con el mensaje del servidor.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &reconcile.RequestError{Op: op, Err: err}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &reconcile.RequestError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &reconcile.RequestError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &reconcile.RequestError{Op: op, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &reconcile.RequestError{
			Op:      op,
			Message: fmt.Sprintf("respuesta no decodificable (HTTP %d)", resp.StatusCode),
			Err:     err,
		}
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		return &reconcile.RequestError{Op: op, Message: msg}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &reconcile.RequestError{Op: op, Message: "payload inesperado", Err: err}
		}
	}
	return nil
}
