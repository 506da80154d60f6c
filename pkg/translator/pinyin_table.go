/*
Copyright 2026 The kiwigo Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package translator

// pinyinTable is a bundled subset of Hanzi-to-pinyin mappings, covering
// single characters common in front-end UI copy (buttons, forms, status
// messages). It is intentionally not exhaustive. Pinyin.TranslateBatch
// falls back to a generic syllable for any character it does not know, so
// key synthesis always has something to work with.
var pinyinTable = map[rune]string{
	'提': "ti", '交': "jiao", '取': "qu", '消': "xiao", '确': "que", '定': "ding",
	'保': "bao", '存': "cun", '删': "shan", '除': "chu", '编': "bian", '辑': "ji",
	'返': "fan", '回': "hui", '搜': "sou", '索': "suo", '登': "deng", '录': "lu",
	'注': "zhu", '册': "ce", '密': "mi", '码': "ma", '手': "shou", '机': "ji",
	'号': "hao", '验': "yan", '证': "zheng", '成': "cheng", '功': "gong",
	'失': "shi", '败': "bai", '加': "jia", '载': "zai", '更': "geng", '多': "duo",
	'没': "mei", '有': "you", '数': "shu", '据': "ju", '请': "qing", '输': "shu",
	'入': "ru", '用': "yong", '户': "hu", '名': "ming",
	'条': "tiao", '您': "nin", '好': "hao", '你': "ni", '认': "ren",
	'世': "shi6", '界': "jie",
	'欢': "huan", '迎': "ying", '退': "tui", '出': "chu", '关': "guan", '闭': "bi",
	'打': "da", '开': "kai", '上': "shang", '下': "xia", '左': "zuo", '右': "you2",
	'前': "qian", '后': "hou", '的': "de", '是': "shi2", '否': "fou", '不': "bu",
	'已': "yi", '未': "wei", '新': "xin", '旧': "jiu", '添': "tian", '修': "xiu",
	'改': "gai", '详': "xiang", '情': "qing2", '列': "lie", '表': "biao",
	'页': "ye", '面': "mian", '订': "ding2", '单': "dan", '商': "shang2", '品': "pin",
	'价': "jia2", '格': "ge", '量': "liang",
	'计': "ji2", '支': "zhi", '付': "fu", '款': "kuan",
	'地': "di", '址': "zhi2", '收': "shou2", '货': "huo", '人': "ren", '电': "dian",
	'话': "hua", '邮': "you3", '箱': "xiang2", '设': "she", '置': "zhi3", '个': "ge2",
	'中': "zhong", '心': "xin2", '我': "wo",
	'息': "xi", '通': "tong", '知': "zhi4", '帮': "bang", '助': "zhu2", '于': "yu",
	'版': "ban", '本': "ben", '系': "xi2", '统': "tong2", '错': "cuo", '误': "wu",
	'警': "jing", '告': "gao", '示': "shi3",
	'正': "zheng2", '在': "zai2", '完': "wan",
	'暂': "zan", '无': "wu2",
	'空': "kong", '全': "quan", '部': "bu2", '选': "xuan", '择': "ze",
	'筛': "shai", '排': "pai", '序': "xu",
	'刷': "shua", '重': "zhong2", '试': "shi4", '继': "ji3", '续': "xu2",
	'跳': "tiao2", '过': "guo", '步': "bu3", '首': "shou3", '尾': "wei2", '查': "cha",
	'看': "kan", '图': "tu", '片': "pian", '视': "shi5", '频': "pin2", '文': "wen",
	'件': "jian", '传': "chuan",
}
