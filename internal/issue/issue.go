// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	FormatUnresolvedId Id = iota + 1
	ModuleLoadFailedId
	InvalidMetadataId
	ConfigLoadFailedId
	PackageRootMissingId
)

type MarkdownMsg string

type HttpLink string

// Renderer abstracts glamour for tests.
type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

// Issue is one catalog entry: a stable id plus the markdown shown to the
// operator when the corresponding failure is diagnosed.
type Issue struct {
	id       Id
	mdMsg    MarkdownMsg
	docLinks []HttpLink
	extLinks []HttpLink
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	formatUnresolvedIssue = &Issue{
		id: FormatUnresolvedId,
		mdMsg: `
# No structure found for this package format!

No plugin on the search path declares the format you asked for.

## Things you can try:
- List the formats that are resolvable right now:
~~~
$ packtrader list-types
~~~

- Check the spelling: format matching is exact and case-sensitive
- Verify a structure module for the format is installed under one of the
  structure directories (packtrader/structures inside each data dir)
- Add the module's directory to 'structure_dirs' in your config file`,
	}

	moduleLoadFailedIssue = &Issue{
		id: ModuleLoadFailedId,
		mdMsg: `
# A structure module was found but could not be loaded!

The plugin resolved for your format exists, but loading its module or
constructing the structure failed. The load error was written to the
diagnostic log.

## Things you can try:
- Re-run with verbose logging to see the loader's error:
~~~
$ packtrader --verbose list --type <format>
~~~

- Check that the module file is readable and built for this platform
- If the module was rebuilt recently, regenerate the plugin index:
~~~
$ packtrader generate-index <dir>
~~~`,
	}

	invalidMetadataIssue = &Issue{
		id: InvalidMetadataId,
		mdMsg: `
# A plugin descriptor is missing required fields!

Descriptors must declare at least a plugin identifier
(X-KDE-PluginInfo-Name) and a Name. Records without them are silently
skipped by listings.

## Example of a minimal valid descriptor:
~~~
[Desktop Entry]
Name=My Theme
X-KDE-PluginInfo-Name=org.example.mytheme
X-KDE-ServiceTypes=theme
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your config.cue contains syntax errors or values that do not match the
schema.

## Things you can try:
- Check the error message above for the specific field
- Validate your CUE syntax with the cue command-line tool
- Remove the config file to fall back to built-in defaults

## Example of a valid config:
~~~cue
search_paths: ["/srv/packages"]
structure_dirs: ["/srv/structures"]
extra_categories: ["automation"]
~~~`,
	}

	packageRootMissingIssue = &Issue{
		id: PackageRootMissingId,
		mdMsg: `
# Package root does not exist!

The package root derived for this format points at a directory that is not
present on disk, so the listing is empty.

## Things you can try:
- Pass an explicit root:
~~~
$ packtrader list --type theme --packageroot /path/to/packages
~~~

- Check the structure's default package root for typos`,
	}

	issues = map[Id]*Issue{
		formatUnresolvedIssue.Id():   formatUnresolvedIssue,
		moduleLoadFailedIssue.Id():   moduleLoadFailedIssue,
		invalidMetadataIssue.Id():    invalidMetadataIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		packageRootMissingIssue.Id(): packageRootMissingIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
