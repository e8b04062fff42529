package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

// inlineSeeds cover lexer corners that testdata does not.
var inlineSeeds = []string{
	"",
	"<?php",
	"<?php }",
	"<?php class A { function A() { parent::A(); } }",
	"<?php $a = \"x\" && $b || !$c;\n",
	"<?php $s = \"{$obj->name} and ${var}\";",
	"<?php echo <<<EOT\nbody $x\nEOT;\n",
	"<?php echo <<<'NOW'\nraw\nNOW;\n",
	"<?php /* never closed",
	"<?php $x = 'never closed",
	"text <? echo 1 ?> <?= 2 ?> <%= 3 %>",
	"<?php\n/* End of file x.php */\n/* Location: ./application/x.php */\n",
	"<?php \xff\xfe $\xc3\xa9t\xc3\xa9 = 1;",
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.php файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".php" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
