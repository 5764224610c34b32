package chromefetch

var ExtractScript = extractScript
