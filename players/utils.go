package players

// APlayer returns a minimal player for tests
func APlayer(id, name string) Player {
	return NewTestPlayer(id, name)
}

// SomePlayers returns a full table of test players
func SomePlayers() Players {
	player1 := NewTestPlayer(NewID(), "Harry")
	player2 := NewTestPlayer(NewID(), "Sally")
	return NewPlayers(player1, player2)
}
