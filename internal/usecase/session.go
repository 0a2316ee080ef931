package usecase

import "bookshop/internal/domain/model"

// 訪問者セッションに置くカートと注文ドラフトの読み書きの約束。
// 実装は infra/websession（cookieセッション）。
// 同一セッションの同時リクエスト（複数タブ）は後勝ちで上書きされる。
type CartSession interface {
	//カートは本IDの順序付き列。同じIDが複数回入っていてよい。
	BookIDs() []int64
	Append(bookID int64)
	//最初の1件だけ消す。無ければfalse。
	RemoveFirst(bookID int64) bool

	Draft() (model.OrderDraft, bool)
	//前のドラフトがあっても上書き（後勝ち）。
	SetDraft(d model.OrderDraft)
	ClearDraft()
	ClearCart()

	//次のリクエストで1回だけ表示するメッセージ
	AddFlash(message string)
	Flashes() []string

	Save() error
}
