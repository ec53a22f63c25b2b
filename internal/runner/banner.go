package runner

import (
	"github.com/projectdiscovery/gologger"
)

var banner = (`

  ____   ____   ____   ____ ___  ___ _____  ____
_/ __ \ / ___\_/ __ \_/ __ \\  \/  // __ \_/ __ \
\  ___// /_/  >  ___/\  ___/ >    <\  ___/\  __/
 \___  >___  / \___  >\___  >__/\_ \\___  >\___  >
     \/_____/      \/     \/      \/    \/     \/
`)

var version = "v0.0.1"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
}
