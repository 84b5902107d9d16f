// @title           artlink API
// @version         1.0
// @description     API маркетплейса для поиска и бронирования артистов.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /

package main

import "artlink_backend/internal/app"

func main() {
	app.Run()
}
