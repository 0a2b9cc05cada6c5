package session

// HandState 牌局状态
type HandState int

const (
	HandStateAwaitingDeal HandState = iota
	HandStateDealt
	HandStateAuctioned
	HandStateBuried
	HandStatePlayingTricks
	HandStateScored
)

var handStateNames = map[HandState]string{
	HandStateAwaitingDeal:  "awaiting deal",
	HandStateDealt:         "dealt",
	HandStateAuctioned:     "auctioned",
	HandStateBuried:        "buried",
	HandStatePlayingTricks: "playing tricks",
	HandStateScored:        "scored",
}

func (s HandState) String() string {
	if name, ok := handStateNames[s]; ok {
		return name
	}
	return "unknown"
}
