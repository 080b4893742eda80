package stor

import "crypto/rand"

const teamCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const teamCodeLength = 6

// GenerateTeamCode returns the 6-character invite code handed out when a
// team is created. Codes are random, not checked for collisions; the space
// is large enough that collisions are treated as negligible.
func GenerateTeamCode() string {
	buf := make([]byte, teamCodeLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand reads from the OS and does not fail in practice
		panic(err)
	}

	for i, b := range buf {
		buf[i] = teamCodeAlphabet[int(b)%len(teamCodeAlphabet)]
	}

	return string(buf)
}
