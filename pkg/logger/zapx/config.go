package zapx

type (
	// LogConf 日志配置，字段通过 viper 从配置文件 log.* 读取
	LogConf struct {
		ServiceName string `mapstructure:"service_name"`
		// Mode console | file | volume
		Mode string `mapstructure:"mode"`
		// Encoding json | console
		Encoding   string `mapstructure:"encoding"`
		TimeFormat string `mapstructure:"time_format"`
		Path       string `mapstructure:"path"`
		// Level debug | info | error
		Level string `mapstructure:"level"`
		// Output console 模式下的输出目标 stderr | stdout
		Output     string `mapstructure:"output"`
		Rotation   string `mapstructure:"rotation"`
		MaxSize    int    `mapstructure:"max_size"`
		MaxBackups int    `mapstructure:"max_backups"`
		KeepDays   int    `mapstructure:"keep_days"`
		Compress   bool   `mapstructure:"compress"`
	}
)

// DefaultLogConf 默认配置：控制台输出到 stderr，仅记录 error
func DefaultLogConf() LogConf {
	return LogConf{
		Mode:     "console",
		Encoding: "console",
		Level:    levelError,
		Output:   "stderr",
		Path:     "logs",
		Rotation: "daily",
	}
}
