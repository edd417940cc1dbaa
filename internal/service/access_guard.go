package service

// Actor 每個請求的操作者，由caller明確傳入，不從全域狀態取得
type Actor struct {
	UserID  uint
	IsAdmin bool
}

type IAccessGuard interface {
	Authorize(actor Actor, ownerID uint) error
	AuthorizeAdmin(actor Actor) error
}

type AccessGuard struct{}

func NewAccessGuard() IAccessGuard {
	return &AccessGuard{}
}

// Authorize 擁有者本人或管理員才可操作該資源
func (g *AccessGuard) Authorize(actor Actor, ownerID uint) error {
	if actor.IsAdmin {
		return nil
	}
	if actor.UserID == ownerID {
		return nil
	}
	return ErrAccessDenied
}

// AuthorizeAdmin 僅管理員可操作，訂單狀態轉移使用
func (g *AccessGuard) AuthorizeAdmin(actor Actor) error {
	if !actor.IsAdmin {
		return ErrAccessDenied
	}
	return nil
}
