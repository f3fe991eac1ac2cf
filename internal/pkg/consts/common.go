package consts

const (
	DefaultPostLimit = 20
	MaxPostLimit     = 100
)

const (
	SchemeHTTP  = "http://"
	SchemeHTTPS = "https://"
)
