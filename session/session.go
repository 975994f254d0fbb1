package session

import "github.com/rs/xid"

// token is minted once per process. xid identifiers embed time, machine
// and pid, so two processes on the same host never collide.
var token = xid.New().String()

// ID returns the session token of this process run. The token is stable
// for the process lifetime and unique across restarts.
func ID() string {
	return token
}
