package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/chrisformoso-ca/rvezy-calgary/models"
)

var (
	hostRegex     = regexp.MustCompile(`Hosted by ([A-Za-z]+)Joined in (\d{4})`)
	responseRegex = regexp.MustCompile(`(\d+)% response rate`)
)

const superhostMarker = "Superhost"

// extractHost recovers the host name, join year, response rate and
// superhost flag. Absence of the hosted-by phrase is a soft miss: the
// name and year stay nil and no host row will ever be created for the
// record.
func extractHost(body string) models.HostInfo {
	var host models.HostInfo

	if m := hostRegex.FindStringSubmatch(body); m != nil {
		name := m[1]
		year, _ := strconv.Atoi(m[2])
		host.Name = &name
		host.JoinedYear = &year
	}

	host.ResponseRate = firstInt(body, responseRegex)
	host.IsSuperhost = strings.Contains(body, superhostMarker)

	return host
}
