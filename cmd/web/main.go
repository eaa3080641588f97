// @title           SchoolHub API
// @version         1.0
// @description     Review moderation and rating aggregation API for school discovery.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1

package main

import "schoolhub_backend/internal/app"

func main() {
	app.Run()
}
