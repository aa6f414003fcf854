package core

// Entity is a small integer handle issued by the world
// Zero is never issued and means "no entity"
type Entity uint64
