package version

// goreleaser などから ldflags で上書きされる
var version = "dev"
