package main

import (
	"context"
	"time"

	"github.com/shandysiswandi/gocontact/internal/app"
)

const shutdownTimeout = 10 * time.Second

// @title           Portfolio Email API
// @version         1.0
// @description     Relays portfolio contact form submissions to the site owner's inbox over SMTP or Resend.
// @license.name    MIT
// @license.url     https://mit-license.org/
// @server          http://localhost:3000
func main() {
	a := app.New()
	<-a.Start()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	a.Stop(ctx)
}
