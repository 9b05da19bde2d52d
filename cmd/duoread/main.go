package main

import (
	"log"
	"os"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/app"
)

func main() {
	err := app.NewReadingCompanionApp().
		Introspect(&app.ReportLoggerIntrospector{Logger: log.New(os.Stdout, "duoread ", log.LstdFlags|log.Lmsgprefix)}).
		Run()
	if err != nil {
		panic(err)
	}
}
