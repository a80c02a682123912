package serve

import "time"

type config struct {
	ListenAddr       string        `env:"LISTEN_ADDR" envDefault:":8080"`
	SqlitePath       string        `env:"SQLITE_PATH" envDefault:"db.sqlite3"`
	RcloneRemote     string        `env:"RCLONE_REMOTE" envDefault:"gcs"`
	RcloneBucket     string        `env:"RCLONE_BUCKET" envDefault:"radiarc-archive"`
	PublicBaseURL    string        `env:"PUBLIC_BASE_URL" envDefault:"https://storage.googleapis.com/radiarc-archive"`
	SweepInterval    time.Duration `env:"SWEEP_INTERVAL" envDefault:"10m"`
	RestrictionFlags string        `env:"RESTRICTION_FLAGS" envDefault:"ts_in,ts_out"`
}
