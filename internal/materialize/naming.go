package materialize

import (
	"fmt"
	"strings"

	"github.com/harrison/bucketize/internal/config"
)

// FolderName renders the destination folder name for a bucket key.
// Naming options apply in a fixed order: uppercase first, then the count
// suffix, then the prefix/suffix wrapping.
func FolderName(key string, count int, opts config.Options) string {
	name := key
	if opts.Upper {
		name = strings.ToUpper(name)
	}
	if opts.IncludeCount {
		name = fmt.Sprintf("%s [%d]", name, count)
	}
	return opts.Prefix + name + opts.Suffix
}
