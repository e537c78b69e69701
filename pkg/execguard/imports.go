package execguard

import (
	"regexp"
	"strings"
)

// importClass is the trust classification of a Python module.
type importClass string

// Import classes.
const (
	importAllowed    importClass = "allowed"
	importRestricted importClass = "restricted"
	importUnknown    importClass = "unknown"
)

// allowedModules are standard-library and safe data-processing modules any
// tier may import.
var allowedModules = map[string]bool{
	"math": true, "statistics": true, "decimal": true, "fractions": true,
	"random": true, "json": true, "csv": true, "re": true, "string": true,
	"datetime": true, "time": true, "calendar": true, "zoneinfo": true,
	"collections": true, "itertools": true, "functools": true, "operator": true,
	"heapq": true, "bisect": true, "array": true, "enum": true, "dataclasses": true,
	"typing": true, "abc": true, "copy": true, "uuid": true, "hashlib": true,
	"base64": true, "textwrap": true, "unicodedata": true, "difflib": true,
	"pandas": true, "numpy": true, "scipy": true, "sklearn": true,
	"matplotlib": true, "seaborn": true, "statsmodels": true, "sympy": true,
}

// restrictedModules reach the network or a database. Only the Head tier may
// import them.
var restrictedModules = map[string]bool{
	"socket": true, "ssl": true, "http": true, "urllib": true, "urllib3": true,
	"requests": true, "httpx": true, "aiohttp": true, "ftplib": true,
	"smtplib": true, "imaplib": true, "poplib": true, "telnetlib": true,
	"sqlite3": true, "psycopg2": true, "pymysql": true, "mysql": true,
	"sqlalchemy": true, "redis": true, "pymongo": true, "boto3": true,
	"paramiko": true, "websocket": true, "websockets": true, "grpc": true,
}

var (
	importStmt     = regexp.MustCompile(`^\s*import\s+(.+)$`)
	fromImportStmt = regexp.MustCompile(`^\s*from\s+([\w.]+)\s+import\b`)
)

// scanImports enumerates every imported top-level module in the code.
// Duplicates are collapsed; order follows first appearance.
func scanImports(code string) []string {
	seen := map[string]bool{}
	var modules []string

	add := func(name string) {
		top := strings.SplitN(strings.TrimSpace(name), ".", 2)[0]
		if top == "" || seen[top] {
			return
		}
		seen[top] = true
		modules = append(modules, top)
	}

	for _, line := range strings.Split(code, "\n") {
		if m := fromImportStmt.FindStringSubmatch(line); m != nil {
			add(m[1])
			continue
		}
		if m := importStmt.FindStringSubmatch(line); m != nil {
			// "import a, b as c" names several modules.
			for _, part := range strings.Split(m[1], ",") {
				name := strings.TrimSpace(part)
				if idx := strings.Index(name, " as "); idx >= 0 {
					name = name[:idx]
				}
				add(name)
			}
		}
	}
	return modules
}

func classifyImport(module string) importClass {
	switch {
	case allowedModules[module]:
		return importAllowed
	case restrictedModules[module]:
		return importRestricted
	default:
		return importUnknown
	}
}
