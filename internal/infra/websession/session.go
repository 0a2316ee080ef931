package websession

import (
	"encoding/gob"
	"net/http"

	"bookshop/internal/domain/model"
	"bookshop/internal/usecase"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	sessionName = "bookshop_session"
	cartKey     = "cart"
	draftKey    = "order_draft"
)

func init() {
	//cookieセッションはgobで直列化される
	gob.Register([]int64{})
	gob.Register(model.OrderDraft{})
}

// Manager はcookieセッションのカート実装を作る。
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret []byte) *Manager {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// Open はリクエストのセッションを開く。壊れたcookieは新しいセッションとして扱う。
func (m *Manager) Open(c echo.Context) (usecase.CartSession, error) {
	s, err := m.store.Get(c.Request(), sessionName)
	if s == nil {
		return nil, err
	}
	return &cartSession{s: s, req: c.Request(), res: c.Response()}, nil
}

type cartSession struct {
	s   *sessions.Session
	req *http.Request
	res http.ResponseWriter
}

func (cs *cartSession) BookIDs() []int64 {
	ids, _ := cs.s.Values[cartKey].([]int64)
	out := make([]int64, len(ids))
	copy(out, ids)
	return out
}

func (cs *cartSession) Append(bookID int64) {
	ids, _ := cs.s.Values[cartKey].([]int64)
	cs.s.Values[cartKey] = append(ids, bookID)
}

func (cs *cartSession) RemoveFirst(bookID int64) bool {
	ids, _ := cs.s.Values[cartKey].([]int64)
	for i, id := range ids {
		if id == bookID {
			next := make([]int64, 0, len(ids)-1)
			next = append(next, ids[:i]...)
			next = append(next, ids[i+1:]...)
			cs.s.Values[cartKey] = next
			return true
		}
	}
	return false
}

func (cs *cartSession) Draft() (model.OrderDraft, bool) {
	d, ok := cs.s.Values[draftKey].(model.OrderDraft)
	return d, ok
}

func (cs *cartSession) SetDraft(d model.OrderDraft) {
	cs.s.Values[draftKey] = d
}

func (cs *cartSession) ClearDraft() {
	delete(cs.s.Values, draftKey)
}

func (cs *cartSession) ClearCart() {
	delete(cs.s.Values, cartKey)
}

func (cs *cartSession) AddFlash(message string) {
	cs.s.AddFlash(message)
}

func (cs *cartSession) Flashes() []string {
	raw := cs.s.Flashes()
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			out = append(out, msg)
		}
	}
	return out
}

func (cs *cartSession) Save() error {
	return cs.s.Save(cs.req, cs.res)
}
