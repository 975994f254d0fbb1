// Package session identifies instrumentation emitters: a process-wide
// session token minted at startup and a registry of per-category ordinal
// counters.
//
// The session token correlates all lines emitted by one process run; a
// consumer aggregating lines from many hosts can group them by session. The
// registry hands out strictly increasing ordinals per event category, so
// the pair (session, category, ordinal) names one operation execution
// uniquely.
//
// # Usage
//
//	fmt.Println(session.ID()) // "cvl2rbgs68qh9n3a1b2g"
//
//	r := session.NewRegistry()
//	first := r.Next("db/query")  // 1
//	second := r.Next("db/query") // 2
package session
