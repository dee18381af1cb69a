package domain

// Args are the scalar arguments attached to an outbound envelope next
// to action and channel. Values are restricted to a closed scalar set,
// checked before anything is sent.
type Args map[string]interface{}
