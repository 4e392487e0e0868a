package config

type Projects struct {
	*Root
}

type ProjectsList struct {
	*Projects
}
