package apperrors

// GameError 游戏错误
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// Error codes reported to front ends.
const (
	CodePlayerCount = 1001
	CodeCardNotHeld = 1002
	CodeIllegalPlay = 1003
	CodeBurySize    = 1004
	CodeBuryOwner   = 1005
)

// 预定义错误
var (
	ErrPlayerCount = &GameError{Code: CodePlayerCount, Message: "there must be 3-5 players"}
	ErrCardNotHeld = &GameError{Code: CodeCardNotHeld, Message: "played card is not in hand"}
	ErrIllegalPlay = &GameError{Code: CodeIllegalPlay, Message: "card does not follow the led suit"}
	ErrBurySize    = &GameError{Code: CodeBurySize, Message: "bury must return exactly as many cards as the blind holds"}
	ErrBuryOwner   = &GameError{Code: CodeBuryOwner, Message: "buried cards must come from the combined hand and blind"}
)
