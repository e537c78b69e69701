package sandbox

// Paths of the staged files inside every sandbox.
const (
	InputPath   = "/tmp/input.json"
	CodePath    = "/tmp/code.py"
	HarnessPath = "/tmp/harness.py"
)

// Harness is the fixed executor script staged into every sandbox. It loads
// the input JSON, runs the user code with input_data bound, inspects the
// result (or output) binding, and prints exactly one JSON summary object
// to stdout: success, output_schema, row_count, sample, stats, stdout,
// stderr, execution_time_ms, and error on failure. Raw result data never
// leaves the container.
const Harness = `import contextlib
import io
import json
import time
import traceback


def summarize(value):
    schema, row_count, sample, stats = {}, 0, [], {}
    if value is None:
        return schema, row_count, sample, stats
    if hasattr(value, "to_dict") and hasattr(value, "dtypes"):
        schema = {str(c): str(t) for c, t in value.dtypes.items()}
        row_count = int(len(value))
        sample = json.loads(value.head(3).to_json(orient="records"))
        with contextlib.suppress(Exception):
            stats = json.loads(value.describe().to_json())
        return schema, row_count, sample, stats
    if isinstance(value, list) and value and all(isinstance(r, dict) for r in value):
        for row in value:
            for key, item in row.items():
                schema.setdefault(str(key), type(item).__name__)
        row_count = len(value)
        sample = value[:3]
        return schema, row_count, sample, stats
    schema = {"value": type(value).__name__}
    row_count = 1
    sample = [str(value)[:500]]
    return schema, row_count, sample, stats


def main():
    with open("/tmp/input.json") as f:
        input_data = json.load(f)

    bindings = {"input_data": input_data}
    out, err = io.StringIO(), io.StringIO()
    started = time.monotonic()
    report = {"success": False}

    try:
        with open("/tmp/code.py") as f:
            code = f.read()
        with contextlib.redirect_stdout(out), contextlib.redirect_stderr(err):
            exec(compile(code, "/tmp/code.py", "exec"), bindings)
        value = bindings.get("result", bindings.get("output"))
        schema, row_count, sample, stats = summarize(value)
        report = {
            "success": True,
            "output_schema": schema,
            "row_count": row_count,
            "sample": sample,
            "stats": stats,
        }
    except Exception:
        report["error"] = traceback.format_exc(limit=5)

    report["stdout"] = out.getvalue()[:10000]
    report["stderr"] = err.getvalue()[:10000]
    report["execution_time_ms"] = int((time.monotonic() - started) * 1000)
    print(json.dumps(report, default=str))


if __name__ == "__main__":
    main()
`
