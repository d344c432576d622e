package di

import (
	"sentwatch/internal/services"
	"sentwatch/internal/state/interfaces"
)

// provideRunner narrows the watch service to the single method the
// scheduler needs.
func provideRunner(ws services.WatchServiceInterface) interfaces.RunnerInterface {
	return ws
}
