package log

// Key/value style helpers: Info("Hashed file", "file", name, "bits", 256).

func Debug(msg string, ctx ...interface{}) {
	sugar.Debugw(msg, ctx...)
}

func Info(msg string, ctx ...interface{}) {
	sugar.Infow(msg, ctx...)
}

func Warn(msg string, ctx ...interface{}) {
	sugar.Warnw(msg, ctx...)
}

func Error(msg string, ctx ...interface{}) {
	sugar.Errorw(msg, ctx...)
}

// Crit logs and exits the process with status 1.
func Crit(msg string, ctx ...interface{}) {
	sugar.Fatalw(msg, ctx...)
}
