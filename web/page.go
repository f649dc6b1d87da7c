package web

// indexPage is a minimal manual test page: submit a prompt, render the
// returned image.
const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>imagine</title>
<style>
  body { font-family: sans-serif; max-width: 40rem; margin: 2rem auto; }
  textarea { width: 100%; height: 4rem; }
  img { max-width: 100%; margin-top: 1rem; }
  .error { color: #b00; }
</style>
</head>
<body>
<h1>imagine</h1>
<form id="form">
  <textarea id="prompt" placeholder="a red cube on a white background"></textarea>
  <button type="submit">Generate</button>
</form>
<p id="status"></p>
<img id="result" hidden>
<script>
const form = document.getElementById('form');
const status = document.getElementById('status');
const result = document.getElementById('result');
form.addEventListener('submit', async (e) => {
  e.preventDefault();
  status.textContent = 'Generating…';
  status.className = '';
  result.hidden = true;
  try {
    const resp = await fetch('/api/generate', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify({prompt: document.getElementById('prompt').value}),
    });
    const data = await resp.json();
    if (!resp.ok) throw new Error(data.error || resp.statusText);
    status.textContent = data.text;
    result.src = data.imageUrl;
    result.hidden = false;
  } catch (err) {
    status.textContent = err.message;
    status.className = 'error';
  }
});
</script>
</body>
</html>
`
