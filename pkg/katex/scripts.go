package katex

// probeScript requires the module named by argv[1] and prints its version.
const probeScript = `
try {
  const lib = require(process.argv[1]);
  if (typeof lib.renderToString !== 'function') {
    throw new Error('module does not export renderToString');
  }
  process.stdout.write(String(lib.version || ''));
} catch (e) {
  process.stderr.write(String(e && e.message ? e.message : e).split('\n')[0]);
  process.exit(1);
}
`

// renderScript reads {"expression", "options"} from stdin and writes the
// rendered markup. A thrown error exits with status 2; a null or undefined
// result produces no output.
const renderScript = `
const lib = require(process.argv[1]);
let input = '';
process.stdin.setEncoding('utf8');
process.stdin.on('data', (chunk) => { input += chunk; });
process.stdin.on('end', () => {
  let out;
  try {
    const req = JSON.parse(input);
    out = lib.renderToString(req.expression, req.options);
  } catch (e) {
    process.stderr.write(String(e && e.message ? e.message : e).split('\n')[0]);
    process.exit(2);
  }
  if (out !== undefined && out !== null && out !== false) {
    process.stdout.write(String(out));
  }
});
`

// exitRenderError is the status renderScript uses for a thrown render error
const exitRenderError = 2
