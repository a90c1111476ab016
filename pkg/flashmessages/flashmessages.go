// Package flashmessages guarda mensagens de uma única exibição na sessão,
// usadas nos redirects pós-submit do painel administrativo.
package flashmessages

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

var errSessionStore = errors.New("armazenamento de sessão não inicializado")

const (
	FlashSuccessKey = "flash_success"
	FlashErrorKey   = "flash_error"

	flashFormDataKey = "flash_form_data"
)

var store *session.Store

// SetupStore inicializa o armazenamento de sessão (memória local).
// Deve ser chamado uma vez na montagem das rotas.
func SetupStore() *session.Store {
	store = session.New(session.Config{
		Expiration:     30 * time.Minute,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	return store
}

// SetFlashMessage grava uma mensagem que será consumida na próxima renderização.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	if store == nil {
		return errSessionStore
	}
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessage lê e remove a mensagem da sessão.
func GetFlashMessage(c *fiber.Ctx, key string) string {
	if store == nil {
		return ""
	}
	sess, err := store.Get(c)
	if err != nil {
		return ""
	}
	message, ok := sess.Get(key).(string)
	if !ok || message == "" {
		return ""
	}
	sess.Delete(key)
	_ = sess.Save()
	return message
}

// SetFlashFormData serializa os dados do formulário para repopular os
// campos após um redirect de erro.
func SetFlashFormData(c *fiber.Ctx, form any) error {
	if store == nil {
		return errSessionStore
	}
	payload, err := json.Marshal(form)
	if err != nil {
		return err
	}
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(flashFormDataKey, string(payload))
	return sess.Save()
}

// GetFlashFormData devolve os dados do formulário gravados (ou um mapa
// vazio), já removendo-os da sessão.
func GetFlashFormData(c *fiber.Ctx) map[string]string {
	formData := map[string]string{}
	if store == nil {
		return formData
	}
	sess, err := store.Get(c)
	if err != nil {
		return formData
	}
	payload, ok := sess.Get(flashFormDataKey).(string)
	if !ok || payload == "" {
		return formData
	}
	sess.Delete(flashFormDataKey)
	_ = sess.Save()
	_ = json.Unmarshal([]byte(payload), &formData)
	return formData
}
