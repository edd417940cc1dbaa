package token

import "time"

type Maker[T any] interface {
	CreateToken(upn string, userId T, duration time.Duration) (string, *Payload[T], error)
	VertifyToken(token string) (*Payload[T], error)
}
