package config

type Auth struct {
	*Root
}

type AuthLogin struct {
	*Auth
}

type AuthStatus struct {
	*Auth
}

type AuthLogout struct {
	*Auth
}
