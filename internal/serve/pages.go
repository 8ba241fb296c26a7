package serve

// indexPage is the search widget. The textarea submits on Enter while
// Shift+Enter inserts a newline; during a request the button is disabled and
// relabelled, and it is restored whichever way the request ends.
const indexPage = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Ask</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 40rem; margin: 3rem auto; padding: 0 1rem; }
textarea { width: 100%; min-height: 4rem; font: inherit; padding: .5rem; box-sizing: border-box; }
button { font: inherit; padding: .5rem 1.5rem; margin-top: .5rem; }
#panel { display: none; margin-top: 1.5rem; }
#loading { color: #666; }
.error { color: #b00020; }
.metadata dt { font-weight: 600; }
.metadata dd { margin: 0 0 .25rem; }
</style>
</head>
<body>
<h1>Ask</h1>
<form id="form">
<textarea id="query" placeholder="Ask a question..."></textarea>
<button id="submit" type="submit">Search</button>
</form>
<div id="panel">
<p id="loading" hidden>Searching...</p>
<div id="result"></div>
</div>
<script>
(function () {
  var form = document.getElementById('form');
  var queryEl = document.getElementById('query');
  var submitEl = document.getElementById('submit');
  var panel = document.getElementById('panel');
  var loading = document.getElementById('loading');
  var result = document.getElementById('result');

  queryEl.addEventListener('keydown', function (e) {
    if (e.key === 'Enter' && !e.shiftKey) {
      e.preventDefault();
      form.requestSubmit();
    }
  });

  form.addEventListener('submit', function (e) {
    e.preventDefault();
    var query = queryEl.value.trim();
    if (!query) {
      alert('Please enter a question first.');
      return;
    }

    submitEl.disabled = true;
    submitEl.textContent = 'Searching...';
    panel.style.display = 'block';
    loading.hidden = false;
    result.textContent = '';
    setTimeout(function () { panel.scrollIntoView({ behavior: 'smooth' }); }, 100);

    fetch('/api/ask', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ query: query })
    }).then(function (r) {
      return r.json().then(function (body) { return { ok: r.ok, body: body }; });
    }).then(function (r) {
      loading.hidden = true;
      if (!r.ok) {
        renderError(r.body.error || 'The search failed.');
        return;
      }
      render(r.body);
    }).catch(function () {
      loading.hidden = true;
      renderError('Could not reach the search service. Check your connection.');
    }).finally(function () {
      submitEl.disabled = false;
      submitEl.textContent = 'Search';
    });
  });

  function renderError(message) {
    result.textContent = '';
    var p = document.createElement('p');
    p.className = 'error';
    p.textContent = message;
    result.appendChild(p);
  }

  function render(body) {
    result.textContent = '';
    var answer = document.createElement('p');
    answer.className = 'answer';
    answer.textContent = body.answer;
    result.appendChild(answer);

    if (body.metadata) {
      var dl = document.createElement('dl');
      dl.className = 'metadata';
      addRow(dl, 'Files searched', body.metadata.fileCount);
      addRow(dl, 'Answered at', body.metadata.timestamp);
      addRow(dl, 'Processing time', body.metadata.processingTime != null ? body.metadata.processingTime + 's' : null);
      if (dl.children.length) result.appendChild(dl);
    }

    if (body.sources && body.sources.length) {
      var ol = document.createElement('ol');
      ol.className = 'sources';
      body.sources.forEach(function (s) {
        var li = document.createElement('li');
        var a = document.createElement('a');
        a.href = s.url;
        a.rel = 'noopener';
        a.textContent = s.name;
        li.appendChild(a);
        ol.appendChild(li);
      });
      result.appendChild(ol);
    }
  }

  function addRow(dl, label, value) {
    if (value == null || value === '') return;
    var dt = document.createElement('dt');
    dt.textContent = label;
    var dd = document.createElement('dd');
    dd.textContent = value;
    dl.appendChild(dt);
    dl.appendChild(dd);
  }
})();
</script>
</body>
</html>
`

const resultPageHead = `<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>Ask</title></head>
<body>
`

const resultPageFoot = `
<p><a href="/">Ask another question</a></p>
</body>
</html>
`
