// @title           Castpro API
// @version         1.0
// @description     Backend API for the Castpro Engineering website and admin panel.
// @contact.name    Castpro Engineering
// @contact.email   info@castpro.org
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /

package main

import "castpro_backend/internal/app"

func main() {
	app.Run()
}
